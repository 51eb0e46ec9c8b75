// Package imaging provides the image stages of the annotation pipeline:
// loading, binarization for recognition, and drawing results.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is the top-left corner, X increases rightward and Y
// increases downward.
//
// # Loading
//
// Load decodes JPEG, PNG, GIF, BMP, TIFF and WebP files. A missing file is
// reported as IMAGE_NOT_FOUND and anything unreadable as IMAGE_DECODE_FAILED,
// so callers can stop before the recognition engine ever sees bad input.
//
// # Binarization
//
// Binarize converts to grayscale with ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B) and then applies a fixed threshold: values
// strictly above the level become 255, everything else 0. The default level
// is 100.
//
// # Annotation
//
// Annotator draws onto an RGB copy of the source; the source is never
// modified. For each result it draws a rectangle outline from the box's
// top-left to bottom-right corner and a "<text> (<confidence>)" label whose
// top edge sits FontSize+LabelGap pixels above the box. Labels that fall
// outside the image are clipped.
//
// # Fonts
//
// LoadFace reads TrueType/OpenType files and collections. An empty path
// uses the embedded Go Regular face, which has no CJK glyphs; supply a CJK
// font when recognizing Chinese, Japanese or Korean text.
package imaging
