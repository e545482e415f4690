package model

// Subscription registers interest of a device in an address on a chain.
type Subscription struct {
	DeviceID int64
	Chain    Chain
	Address  string
}

type Platform string

var (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// Device is a notification target.
type Device struct {
	ID            int64
	DeviceID      string
	Token         string
	Platform      Platform
	IsPushEnabled bool
}
