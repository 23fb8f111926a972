package chroma

// Renderer turns one decoded frame into one keyed RGBA frame.
//
// Implementations own the GPU state needed to do so (context, shader
// program, geometry, textures) and release all of it in Close.
// The GL implementation lives in render/; tests use an in-process fake.
//
// A Renderer is bound to a single OS thread and is not safe for
// concurrent use. Frames are rendered strictly one at a time.
type Renderer interface {
	// SetBackground uploads an optional background plate, already
	// scaled to the frame resolution. Called at most once per run,
	// before the first Render. Rendering without a background plate
	// produces transparent output behind the subject.
	SetBackground(plate *Pixmap) error

	// Render produces the keyed RGBA image for one frame. The result
	// uses the conventional top-left row origin. Render is a pure
	// function of (frame, params): no cross-frame state survives
	// except texture contents, which are fully overwritten first.
	//
	// Any GPU-level failure is unrecoverable for the run; a torn
	// frame cannot be distinguished from a valid one downstream.
	Render(frame *Pixmap, params KeyParams) (*Pixmap, error)

	// Close releases GPU resources in reverse creation order.
	// It is idempotent and safe after a partially failed setup.
	Close()
}
