// Package ocr recognizes text in orientation-corrected images using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2). Images are
// handed to Tesseract in memory as PNG, so camera photos are read upright
// after EXIF orientation has been applied by the imaging package.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Supported Languages
//
// The default language is English ("eng"). Other languages use their
// Tesseract codes, e.g. "deu", "fra", "chi_sim".
//
// # Error Handling
//
// If word-level bounding box extraction fails, RecognizeText still returns
// the recognized text with an empty Regions slice.
package ocr
