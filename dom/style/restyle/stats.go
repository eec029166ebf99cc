package restyle

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/npillmayer/restyle/dom/style/matchcache"

// Stats are counters of engine activity since its creation.
type Stats struct {
	Toggles        int // pseudo-class toggles changing a node's state
	IgnoredToggles int // toggles to the value already in effect
	Moves          int // tree moves reported
	DirtyMarks     int // nodes marked dirty
	Resolutions    int // nodes resolved through the match cache
	Changed        int // nodes whose declaration block changed
	Pulses         int
	Cache          matchcache.Stats
}

// Stats returns the current counters of the engine and its match cache.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Cache = e.cache.Stats()
	return s
}
