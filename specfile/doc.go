// SPDX-License-Identifier: MIT

// Package specfile reads declarative scene specifications written in YAML.
//
// Every random field is a tagged sequence naming the distribution kind:
//
//	[const, 3.5]
//	[choose, [a.wav, b.wav]]      # [choose, []] means "any"
//	[uniform, 0, 9]
//	[normal, 0, 1]
//	[truncnorm, 0, 1, -1, 1]
//
// Integer and vector fields (ir_length, room_dimensions, reflectivity) and
// label fields accept const and choose only. A full file:
//
//	duration: 10
//	ambisonics_order: 3
//	fg_path: sounds/foreground
//	bg_path: sounds/background
//	backgrounds:
//	  - source_file: [choose, []]
//	    source_time: [const, 0]
//	events:
//	  - source_file: [choose, []]
//	    source_time: [const, 0]
//	    event_time: [uniform, 0, 8]
//	    event_duration: [truncnorm, 2, 1, 0.5, 4]
//	    event_azimuth: [uniform, 0, 6.283185307179586]
//	    event_elevation: [const, 0]
//	    event_spread: [const, 0]
//	    snr: [uniform, 6, 30]
//	    pitch_shift: [uniform, -3, 3]
//	reverb:
//	  simulated:
//	    ir_length: [const, 4096]
//	    room_dimensions: [const, [6, 4, 3]]
//	    t60: [const, 0.4]
//	    source_type: [const, o]
//	    microphone_type: [const, em32]
//
// Relative folders are resolved against the directory of the file when it is
// read with Load.
package specfile
