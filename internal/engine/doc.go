// Package engine loads and drives the text-recognition engine.
//
// The engine is Tesseract, reached through gosseract/v2. This package owns
// only its configuration and the translation of its output into Result
// values; detection and recognition themselves are opaque.
//
// # Weights
//
// Each configured language needs a "<lang>.traineddata" file inside
// Config.WeightsDir. When Config.AllowDownload is false a missing file is a
// fatal MODEL_LOAD_FAILED error and nothing touches the network. When it is
// true, missing files are fetched from the tessdata_fast repository (or the
// base URL given with WithDownloadBaseURL) before the client is created.
//
// # Language Codes
//
// Tesseract codes are used as-is ("eng", "chi_sim", "deu"). The short codes
// used by other OCR toolkits are mapped for convenience:
//   - "ch_sim" -> "chi_sim"
//   - "ch_tra" -> "chi_tra"
//   - "en" -> "eng"
//   - "ja" -> "jpn"
//   - "ko" -> "kor"
//
// # Sub-stages
//
// Config.EnableDetector and Config.EnableRecognizer select what Read returns:
//   - both: one Result per text line with its text and confidence
//   - detector only: text-line boxes with empty Text
//   - recognizer only: a single Result spanning the whole image
//
// Disabling both is a configuration error.
//
// # Accelerator
//
// Tesseract runs on the CPU. Config.UseAccelerator is accepted and recorded
// but only produces a warning in the log.
//
// # Thread Safety
//
// A loaded TesseractEngine can be reused for any number of sequential Read
// calls. Calls are serialized internally; the engine is not a worker pool.
package engine
