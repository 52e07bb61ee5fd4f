package app

import "time"

const readHeaderTimeout = 5 * time.Second
