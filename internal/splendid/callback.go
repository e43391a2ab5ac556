package splendid

import (
	"strconv"
	"strings"

	"splendctl/internal/logger"
)

// Notification codes delivered through the RPC callback.
const (
	fnModeReport     = 18 // mode id + "<n>,<dimming>,<monochrome>" text
	fnManualReport   = 20 // manual slider value
	fnEyeCareReport  = 21 // eye care level
	fnEReadingReport = 27 // packed grayscale/temperature
)

// Apply decodes a single callback notification into the store. The RPC
// client invokes this on a thread it owns, at any time relative to our own
// calls, so it must never block and never fail loudly; malformed payloads
// are dropped.
func (s *Store) Apply(fn, data int32, text string) {
	switch fn {
	case fnModeReport:
		parts := strings.Split(text, ",")
		if len(parts) >= 2 {
			if v, err := strconv.Atoi(parts[1]); err == nil {
				s.dimming.Store(int32(v))
			}
		}
		if len(parts) >= 3 {
			if v, err := strconv.Atoi(parts[2]); err == nil {
				s.monochrome.Store(v != 0)
			}
		}
		s.mode.Store(data)
		logger.Debugf("mode report: id=%d dimming=%d monochrome=%t",
			data, s.dimming.Load(), s.monochrome.Load())
	case fnManualReport:
		s.manual.Store(data)
		logger.Debugf("manual slider report: %d", data)
	case fnEyeCareReport:
		s.eyecare.Store(data)
		logger.Debugf("eye care report: %d", data)
	case fnEReadingReport:
		raw := data + 206
		s.grayscale.Store(raw / 256)
		s.temperature.Store(raw % 256)
		logger.Debugf("e-reading report: grayscale=%d temp=%d", raw/256, raw%256)
	}
}
