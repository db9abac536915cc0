// Package ffmpeg renders a planner.FilePlan into an ffmpeg argument list
// and runs the resulting command. The external binary is the only encoder
// in the system; nothing here decodes or encodes audio itself.
package ffmpeg
