package richtext

// Sink consumes runs and assembles them into a document.
type Sink interface {
	LinkRegistrar
	EmbedImage(img Image) error
	AppendRun(r Run) error
}

// Emit feeds seq into sink in order. Image runs go to EmbedImage, text runs
// (including empty ones) to AppendRun.
func Emit(sink Sink, seq Sequence) error {
	for _, r := range seq {
		var err error
		if r.Image != nil {
			err = sink.EmbedImage(*r.Image)
		} else {
			err = sink.AppendRun(r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
