// Package buffer provides the sample containers shared between the audio
// thread and its readers.
//
// [Capture] is a fixed-size lock-free ring written by one producer (the
// audio callback) and snapshotted by any number of readers. [Planar] is a
// reusable channel-major block used when converting to and from
// interleaved device or file frames.
package buffer
