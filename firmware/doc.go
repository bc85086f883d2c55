// Package firmware loads firmware into a cold AF9035 bridge.
//
// # Overview
//
// A freshly plugged bridge runs from ROM and answers query-info with zeros.
// The loader walks the segments of a firmware image and then boots it:
//
//	ParseHeader -> Segment{0..n-1} -> Boot -> Verify -> Done
//
// Download segments are bracketed by begin and end commands and streamed in
// chunks of at most 57 bytes. The bridge does not acknowledge download
// chunks, so a bad chunk only shows up as a transport error. ROM copy
// segments use scatter writes, and each of those is acknowledged.
//
// After boot the loader issues query-info; an all-zero reply means the
// firmware did not start and Load fails with ErrFirmwareDidNotStart.
//
// # Basic Usage
//
//	img, err := fwimage.Parse("dvb-usb-af9035-01.fw")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	loader := firmware.New(ch)
//	warm, err := loader.IsWarm(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !warm {
//	    if err := loader.Load(ctx, img); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Error Handling
//
// Every failure during Load is a *LoadError naming the state, segment and
// chunk. It unwraps to the cause, so errors.Is works with the protocol
// sentinels, ErrFirmwareDidNotStart and context errors.
package firmware
