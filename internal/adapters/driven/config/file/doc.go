// Package file provides the TOML-backed configuration store.
//
// Settings live in a single config.toml under the application
// directory. Secrets may instead come from the environment; Load
// applies NOTION_TOKEN and OPENAI_API_KEY over whatever the file
// holds.
package file
