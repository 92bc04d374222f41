package evidence

import "fmt"

// Kind is one of the three analyses the lab runs.
type Kind int

const (
	KindDNA Kind = iota
	KindFingerprints
	KindCamera
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindDNA:
		return "dna"
	case KindFingerprints:
		return "fingerprints"
	case KindCamera:
		return "camera"
	case kindCount:
		return "unknown"
	default:
		return "unknown"
	}
}

// Result is a finished analysis ready to be shown to the detective.
type Result struct {
	Kind Kind
	Text string
}

type slot struct {
	busy    bool
	elapsed int
	delay   int
	report  func() string
}

// Lab is the queue of analyses Joseph is working on. It holds at most one analysis of each Kind. Time in the lab is
// counted in actionable turns with Tick.
//
// The zero value is an empty lab ready to use.
type Lab struct {
	slots [kindCount]slot
	// next is where the round-robin search for a finished analysis starts.
	next Kind
}

// Busy reports whether an analysis of kind k is in progress.
func (l *Lab) Busy(k Kind) bool {
	return l.slots[k].busy
}

// SubmitDNA starts the analysis of s. It returns false without changes when a DNA analysis is already running.
func (l *Lab) SubmitDNA(s DNASample) bool {
	return l.start(KindDNA, s.Delay, s.Report)
}

// SubmitFingerprints starts the analysis of s. It returns false without changes when a fingerprint analysis is
// already running.
func (l *Lab) SubmitFingerprints(s FingerprintSample) bool {
	return l.start(KindFingerprints, s.Delay, s.Report)
}

// RequestCamera queues the footage c. It returns false without changes when footage is already on its way.
func (l *Lab) RequestCamera(c CameraResult) bool {
	return l.start(KindCamera, c.Delay, func() string {
		return fmt.Sprintf("Cameras in the %s: %s", c.Target, c.Message())
	})
}

func (l *Lab) start(k Kind, delay int, report func() string) bool {
	if l.slots[k].busy {
		return false
	}
	l.slots[k] = slot{busy: true, elapsed: 0, delay: delay, report: report}
	return true
}

// Tick advances every running analysis by one actionable turn. The analysis of kind skip is left alone, which is
// used on the turn it was submitted.
func (l *Lab) Tick(skip Kind) {
	for k := range l.slots {
		s := &l.slots[k]
		if Kind(k) == skip || !s.busy || s.elapsed >= s.delay {
			continue
		}
		s.elapsed++
	}
}

// TickAll advances every running analysis by one actionable turn.
func (l *Lab) TickAll() {
	l.Tick(kindCount)
}

// Elapsed returns the actionable turns the analysis of kind k has been running for.
func (l *Lab) Elapsed(k Kind) int {
	return l.slots[k].elapsed
}

// Deliver takes one finished analysis out of the lab. When several are finished they are handed out on successive
// calls, rotating through the kinds. The second return value is false when nothing is finished.
func (l *Lab) Deliver() (Result, bool) {
	for i := range kindCount {
		k := (l.next + i) % kindCount
		s := l.slots[k]
		if !s.busy || s.elapsed < s.delay {
			continue
		}
		l.slots[k] = slot{}
		l.next = (k + 1) % kindCount
		return Result{Kind: k, Text: s.report()}, true
	}
	return Result{}, false
}
