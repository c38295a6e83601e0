// Package gemini implements the generation.Gateway interface using
// Google's Gemini API. It abstracts the details of the GenAI SDK so the
// application core stays decoupled from the concrete vendor.
package gemini
