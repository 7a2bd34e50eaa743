package v1

// BasePath is the prefix all chart routes of this API version are mounted
// under. The health probe and the metrics endpoint live outside it.
const BasePath = "/api"

// Version is the API version reported by the health endpoint.
const Version = "1.0.0"
