// Package generation defines the text-generation core: the typed
// requests, the deterministic prompt builder, and the Gateway interface
// that abstracts the external completion service. It keeps the
// application independent of any concrete LLM vendor; the
// platform/gemini and platform/openai packages provide implementations.
package generation
