package ui

// poller tracks the periodic status task of one search session.
//
// The tag identifies the running schedule; stopping or restarting bumps it so ticks and responses from an
// earlier schedule are ignored.
type poller struct {
	tag      int
	running  bool
	inFlight bool
	searchID string
}

// start begins a new schedule for id and returns its tag.
func (p *poller) start(id string) int {
	p.tag++
	p.running = true
	p.inFlight = false
	p.searchID = id
	return p.tag
}

// stop ends the schedule. It reports whether a schedule was running.
func (p *poller) stop() bool {
	if !p.running {
		return false
	}
	p.tag++
	p.running = false
	p.inFlight = false
	p.searchID = ""
	return true
}

// current reports whether tag belongs to the running schedule.
func (p *poller) current(tag int) bool {
	return p.running && tag == p.tag
}
