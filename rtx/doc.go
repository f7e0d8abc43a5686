// Package rtx decodes a Reed-Solomon protected stream of fixed-size radio
// downlink frames back into the variable-length packets they carry.
//
// A Coder pulls bytes one at a time from a Reader, scans for frame sync,
// verifies and corrects each 256-byte frame with RS(255,223) forward error
// correction, validates the embedded frame header, and reassembles the
// packet payload across as many frames as the packet's own header declares,
// handing the finished packet to a Sink and a completion callback.
package rtx
