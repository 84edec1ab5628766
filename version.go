package huefy

// Version is the SDK version, sent as part of the User-Agent header.
const Version = "1.0.0"

// userAgent identifies this SDK to the Huefy API.
const userAgent = "huefy-go/" + Version
