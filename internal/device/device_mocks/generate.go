package device_mocks

//go:generate mockgen -source=../interfaces.go -destination=device_mocks.go -package=device_mocks

// This file contains the go:generate directive to generate mocks for device interfaces.
// To regenerate the mocks, run:
//   go generate ./internal/device/device_mocks
