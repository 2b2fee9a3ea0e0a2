package shared

// Version is the software version reported in outgoing User-Agent headers
// and in the nodeinfo-style metadata.
const Version = "0.9.1"
