// Package composer implements article authoring.
//
// A Draft carries two content buffers, markup source and structured rich
// text, with an explicit authoritative mode. The single conversion
// between them, ConvertToRich, goes one way: there is no code path that
// turns rich-text edits back into markdown, which makes the asymmetry an
// invariant of the type rather than a UI accident.
//
// Cover images arrive through two independent flows filling the same
// field: a backend upload (UploadCover) and deterministic AI generation
// (GenerateCover), the latter adopted only after the image is confirmed
// to load. AI text generation (GenerateText) consumes the server-push
// fragment stream into the markdown buffer.
//
// Submission validates required fields before any network call, names the
// first missing one, and resets the draft on success.
package composer
