// Package manifest models OpenXR runtime manifests: the JSON documents that
// name a runtime's shared library.
//
// A manifest looks like:
//
//	{
//	  "file_format_version": "1.0.0",
//	  "runtime": {
//	    "name": "Monado",
//	    "library_path": "../../lib/libopenxr_monado.so"
//	  }
//	}
//
// Only file format version 1.0.0 is accepted. Unknown fields are ignored.
package manifest
