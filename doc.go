// SPDX-License-Identifier: MIT

// Package ambiscape describes and instantiates ambisonics soundscapes.
//
// A soundscape is a fixed-length scene of background beds and foreground
// events placed on the sphere around a listener, optionally rendered
// through a simulated or measured room. Every event property is a
// distribution; generating a scene draws all of them from a single seeded
// stream, so the same specification and seed always yield the same scene.
//
// The work is split across subpackages:
//
//	distribution/   Const, Choose, Uniform, Normal and TruncNorm descriptors, domains, seeded Sampler
//	spherical/      directions, angular distance, azimuth wrapping, closest-point lookup
//	ambisonics/     channel layout, real spherical harmonics, SN3D gains, spread taper
//	matrix/         small dense matrix used for encoding gains
//	catalog/        source folders, WAV duration probe, measured reverb sets
//	event/          event templates, instantiated events, source ledger
//	reverb/         simulated and measured room descriptors, microphone arrays
//	soundscape/     scene assembly, generation, polyphony statistics, JSON schema
//	specfile/       YAML scene files
//
// The ambiscape command reads a YAML file and writes the instantiated scene
// as JSON:
//
//	ambiscape -seed 7 -o scene.json park.yaml
package ambiscape
