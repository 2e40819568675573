package data

import (
	"path"
	"strings"
)

type ContentType string

const (
	ContentTypeTextPlain         ContentType = "text/plain"
	ContentTypeTextHTML          ContentType = "text/html"
	ContentTypeTextCSS           ContentType = "text/css"
	ContentTypeTextJavaScript    ContentType = "text/javascript"
	ContentTypeTextCSV           ContentType = "text/csv"
	ContentTypeTextMarkdown      ContentType = "text/markdown"
	ContentTypeImageJPEG         ContentType = "image/jpeg"
	ContentTypeImagePNG          ContentType = "image/png"
	ContentTypeImageGIF          ContentType = "image/gif"
	ContentTypeImageSVGXML       ContentType = "image/svg+xml"
	ContentTypeAudioMpeg         ContentType = "audio/mpeg"
	ContentTypeAudioM4B          ContentType = "audio/mp4"
	ContentTypeVideoMP4          ContentType = "video/mp4"
	ContentTypeApplicationPDF    ContentType = "application/pdf"
	ContentTypeApplicationZip    ContentType = "application/zip"
	ContentTypeApplicationGZip   ContentType = "application/gzip"
	ContentTypeApplicationXTar   ContentType = "application/x-tar"
	ContentTypeApplicationJson   ContentType = "application/json"
	ContentTypeApplicationXML    ContentType = "application/xml"
	ContentTypeApplicationYAML   ContentType = "application/yaml"
	ContentTypeApplicationStream ContentType = "application/octet-stream"
)

// ExtensionToMIME maps file extensions to MIME types
var ExtensionToMIME = map[string]ContentType{
	".txt":  ContentTypeTextPlain,
	".log":  ContentTypeTextPlain,
	".html": ContentTypeTextHTML,
	".css":  ContentTypeTextCSS,
	".js":   ContentTypeTextJavaScript,
	".csv":  ContentTypeTextCSV,
	".md":   ContentTypeTextMarkdown,
	".jpg":  ContentTypeImageJPEG,
	".jpeg": ContentTypeImageJPEG,
	".png":  ContentTypeImagePNG,
	".gif":  ContentTypeImageGIF,
	".svg":  ContentTypeImageSVGXML,
	".mp3":  ContentTypeAudioMpeg,
	".m4a":  ContentTypeAudioM4B,
	".m4b":  ContentTypeAudioM4B,
	".mp4":  ContentTypeVideoMP4,
	".pdf":  ContentTypeApplicationPDF,
	".zip":  ContentTypeApplicationZip,
	".gz":   ContentTypeApplicationGZip,
	".tar":  ContentTypeApplicationXTar,
	".json": ContentTypeApplicationJson,
	".xml":  ContentTypeApplicationXML,
	".yml":  ContentTypeApplicationYAML,
	".yaml": ContentTypeApplicationYAML,
}

// GetMIMEType returns the MIME type for the extension of p.
// Unknown extensions default to application/octet-stream.
func GetMIMEType(p string) ContentType {
	ext := strings.ToLower(path.Ext(p))

	if mimeType, exists := ExtensionToMIME[ext]; exists {
		return mimeType
	}

	return ContentTypeApplicationStream
}
