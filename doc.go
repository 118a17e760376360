// Package vip emulates the Virtual Image Processor: the fixed-function
// dual-screen stereoscopic display coprocessor of a 1995 game console.
//
// License: GPLv3 or later
package vip
