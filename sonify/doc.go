// SPDX-License-Identifier: MIT

// Package sonify renders steps as sound: every highlighted index becomes a
// short sine tone whose pitch rises with its value, so a sort can be heard
// as well as watched.
//
// Streams are built from beep primitives (oscillator, attack/release
// envelope, mixing, volume). Tone is pure and does not touch audio
// hardware; Speaker owns the device.
package sonify
