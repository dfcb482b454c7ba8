package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width
	Height          int           // Image height
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera samples taken
	SamplesPerPixel int           // Samples requested per pixel
	MaxBounces      int           // Path length limit
	Tiles           int           // Number of tiles rendered
	Workers         int           // Number of parallel workers used
	Seed            uint64        // Seed the pixel samplers were derived from
	Duration        time.Duration // Wall-clock render time
}

// AverageSamples returns the mean number of samples taken per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// SamplesPerSecond returns the camera sample throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
