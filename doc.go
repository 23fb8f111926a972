// Package chroma removes a key color from video frames on the GPU and
// assembles the result into an alpha-capable container.
//
// The package defines the domain model (KeyParams, Pixmap, RunStats)
// and the collaborator boundaries of the per-frame pipeline:
//
//   - [Source] — decode boundary (video/ wraps ffmpeg via vidio)
//   - [Renderer] — GPU keying (render/ owns the GL 3.3 context)
//   - [Encoder], [Prober] — encode and verification boundaries
//     (export/ shells out to ffmpeg and ffprobe)
//   - [Stager] — the per-run frame staging directory
//
// The pipeline/ package wires these together: decode, upload, render,
// read back, stage, encode, verify. Every frame of a run is rendered
// with one immutable, pre-clamped KeyParams value, strictly in source
// order, on a single OS thread.
package chroma
