package audio

// Player defines the interface for the audio service.
type Player interface {
	Play(name string)
	StartAmbient()
	SetVolume(volume float64)
	SetMuted(muted bool)
	Close()
}
