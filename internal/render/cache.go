package render

import "log"

// CacheEntry is one built background surface and the size it was built for.
type CacheEntry struct {
	Surface Canvas
	Width   int
	Height  int
}

// Stale reports whether the entry cannot serve a w x h request.
func (e *CacheEntry) Stale(w, h int) bool {
	return e == nil || e.Width != w || e.Height != h
}

// BackgroundCache keeps the static layer of a renderer (grass, pitch lines,
// grid lines) in an off-screen surface. The entry is keyed only by size: the
// builder runs again only when the requested dimensions change. Dynamic
// overlays are never drawn into the cached surface.
type BackgroundCache struct {
	newSurface SurfaceFactory
	entry      *CacheEntry
	builds     int
}

// NewBackgroundCache creates an empty cache allocating surfaces with f.
func NewBackgroundCache(f SurfaceFactory) *BackgroundCache {
	return &BackgroundCache{newSurface: f}
}

// Get returns the cached surface for w x h, building it first when the
// cache is empty or sized differently. Non-positive sizes return nil.
func (c *BackgroundCache) Get(w, h int, build func(Canvas)) Canvas {
	if w <= 0 || h <= 0 {
		return nil
	}
	if !c.entry.Stale(w, h) {
		return c.entry.Surface
	}
	if c.entry != nil {
		log.Printf("[BackgroundCache] size %dx%d -> %dx%d, rebuilding", c.entry.Width, c.entry.Height, w, h)
		if r, ok := c.entry.Surface.(releaser); ok {
			r.Release()
		}
	}
	surface := c.newSurface(w, h)
	build(surface)
	c.entry = &CacheEntry{Surface: surface, Width: w, Height: h}
	c.builds++
	return surface
}

// Draw clears dst and blits the cached background onto it. The blit happens
// every call; only the build is skipped on a hit.
func (c *BackgroundCache) Draw(dst Canvas, w, h int, build func(Canvas)) {
	dst.Clear()
	if bg := c.Get(w, h, build); bg != nil {
		dst.DrawCanvas(bg)
	}
}

// Builds returns how many times the builder has run.
func (c *BackgroundCache) Builds() int {
	return c.builds
}

// Entry returns the current cache entry, or nil before the first build.
func (c *BackgroundCache) Entry() *CacheEntry {
	return c.entry
}
