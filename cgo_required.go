package main

import _ "runtime/cgo"

// The sqlite driver links against the C library, so a CGO_ENABLED=0 build
// fails here instead of at the first database call.
