package constants

import (
	"image/color"
)

// Application identity
const (
	// AppName - binary and cobra root command name
	AppName = "claudius-icon"

	// ProjectDir - iClaudius Xcode project, relative to the home directory
	ProjectDir = "~/xcode_projects/iClaudius"

	// PNGPath - master 1024px PNG written next to the project
	PNGPath = ProjectDir + "/AppIcon.png"

	// ICNSPath - packed icon inside the app bundle's resource directory
	ICNSPath = ProjectDir + "/iClaudius.app/Contents/Resources/AppIcon.icns"
)

// Rendering
const (
	// MasterSize - side length of the rendered master image
	MasterSize = 1024

	// Glyph - the letter drawn in the center of the badge
	Glyph = "C"

	// GlyphScale - font size as a fraction of the image size
	GlyphScale = 0.55

	// DotCount - decorative dots around the inner ring (one every 15 degrees)
	DotCount = 24

	// FontDPI - 72 makes point size equal to pixel size
	FontDPI = 72
)

// Fonts tried in order before the built-in faces
const (
	PreferredFontPath = "/System/Library/Fonts/Times.ttc"
	AlternateFontPath = "/System/Library/Fonts/Supplemental/Times New Roman.ttf"
)

// Palette
var (
	// GradientTop - dark Roman purple at row 0
	GradientTop = color.RGBA{R: 88, G: 28, B: 108, A: 255}

	// GradientBottom - lighter purple the gradient approaches at the last row
	GradientBottom = color.RGBA{R: 128, G: 48, B: 138, A: 255}

	// Gold - outer ring and glyph
	Gold = color.RGBA{R: 212, G: 175, B: 55, A: 255}

	// DarkGold - inner ring and dots
	DarkGold = color.RGBA{R: 180, G: 145, B: 35, A: 255}

	// ShadowColor - near-black, semi-transparent (non-premultiplied 20,20,20 @ 200)
	ShadowColor = color.NRGBA{R: 20, G: 20, B: 20, A: 200}
)

// Icon set export
const (
	// IconsetExt - staging directory extension consumed by iconutil
	IconsetExt = ".iconset"

	// IconutilCommand - macOS tool that packs an .iconset into .icns
	IconutilCommand = "iconutil"

	// RetinaMaxResolution - resolutions up to this also get an @2x variant
	RetinaMaxResolution = 512

	// DirPerm / FilePerm - permissions for staged and written files
	DirPerm  = 0755
	FilePerm = 0644
)

// IconResolutions - nominal sizes written to every icon set, in order
var IconResolutions = []int{16, 32, 64, 128, 256, 512, 1024}
