// Package openai implements the generation.Gateway interface using the
// OpenAI chat completions API. Selected instead of the Gemini gateway
// when llm.provider is "openai".
package openai
