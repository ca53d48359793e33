// Package validator lints OpenXR runtime manifests.
//
// Discovery only tells whether a manifest loads. The validator goes further
// and reports every problem it can find in one pass: unsupported format
// versions, unnamed runtimes, missing libraries, and libraries that are not
// shared objects.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes between blocking errors and non-blocking warnings.
//   - [Issue]: Represents a single problem with the manifest field it concerns.
//   - [Result]: Aggregates the issues of one manifest.
//
// # Basic Usage
//
//	result := validator.ValidateManifest(afero.NewOsFs(), path)
//	if result.HasErrors() {
//		// the loader will reject this runtime
//	}
//
// [Reporter] renders results as text or JSON.
package validator
