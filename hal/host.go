package hal

type hostHAL struct {
	fb *hostFramebuffer
}

// New returns a host HAL with a width×height framebuffer.
func New(width, height int) HAL {
	return &hostHAL{fb: newHostFramebuffer(width, height)}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}
