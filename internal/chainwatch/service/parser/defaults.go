package parser

import "time"

const (
	defaultInterval = 5 * time.Second
)
