package server

// Server is the lifecycle of the HTTP API process.
type Server interface {
	// RunServer serves requests until a termination signal arrives, then
	// drains in-flight requests and returns.
	RunServer()

	// Shutdown stops accepting connections and waits for active requests.
	Shutdown()
}
