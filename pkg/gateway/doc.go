// Package gateway implements the file operations the desktop front end
// invokes on the native side: writing a downloaded sample to disk, checking
// whether a file exists and creating an empty placeholder file.
//
// Every operation takes a base directory and a path relative to it. The two
// are joined with filepath.Join; no further normalization or sandboxing is
// applied. Operations that create files first create any missing parent
// directories. Directories created this way are left in place if the
// subsequent file operation fails.
//
// A Gateway holds no mutable state. Calls may run concurrently; calls that
// target the same path are not serialized and the last writer wins.
//
// All failures are returned as *Error values carrying a Kind:
//
//	err := gw.WriteSampleFile(dir, "samples/kick.mp3", data)
//	if gateway.KindOf(err) == gateway.KindValidation {
//		// the path did not end with .wav; nothing was touched
//	}
package gateway
