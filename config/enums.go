package config

// Requested image export format.
// ENUM(png, jpg, svg, pdf)
type ImageFormat int

func (f ImageFormat) Ext() string {
	switch f {
	case ImageFormatPng:
		return ".png"
	case ImageFormatJpg:
		return ".jpg"
	case ImageFormatSvg:
		return ".svg"
	case ImageFormatPdf:
		return ".pdf"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
