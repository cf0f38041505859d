// Package connectors holds the integrations that fetch content from
// remote workspaces. Each connector implements the driven.PageFetcher
// port for one provider; notion is the only connector today.
package connectors
