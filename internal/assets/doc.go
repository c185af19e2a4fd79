// Package assets provides the stylesheet and HTML templates used to build
// the publication.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # e.g. research.css
//	└── templates/
//	    └── {name}/
//	        ├── cover.html       # cover page (html/template)
//	        ├── header.html      # Chrome print header (html/template)
//	        └── footer.html      # Chrome print footer (html/template)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
