// Package anim is a timeline-based animation scheduler.
//
// anim provides the recursive, marker-indexed timeline engine that every
// non-trivial animation library needs: sequences, parallel tracks,
// iterations, and nested players, all composed from a small instruction
// DSL and driven by a caller-supplied tick source.
//
// # Quick start
//
// The simplest way to get started is to build a [Player] wrapping a root
// [Timeline] instruction function and drive it with [Player.Play]:
//
//	p := anim.NewPlayer(func(tl *anim.Timeline) {
//		tl.Animate(anim.AnimateParams{
//			Target:      anim.ElementTarget(el),
//			HasDuration: true,
//			Duration:    300,
//			Properties:  map[string]anim.PropertySpec{"left": anim.To("100px")},
//		})
//	})
//	p.Play(anim.PlayArguments{OnUpdate: func(t int64) { fmt.Println(t) }})
//
// # Timeline instructions
//
// Every visual mutation happens inside an [InstructionFunc]. Instruction
// bodies are opaque closures that call back into the [Timeline] API
// ([Timeline.Animate], [Timeline.Group], [Timeline.Sequence],
// [Timeline.Parallelize], [Timeline.Iterate], [Timeline.Repeat],
// [Timeline.Play]) and may themselves suspend mid-body by calling
// [Timeline.Await] — the scheduler resumes them cooperatively as the
// timeline is seeked forward and backward.
//
// # Key features
//
// anim includes marker-indexed bidirectional seeking, variable-speed
// alternating sub-players (via [PlayerEntity]), an easing package wrapping
// [gween] plus native elasticity-parameterized variants (anim/ease), value
// interpolators including a colorful.Color-backed color interpolator
// (anim/interpolate), a headless element/selector adapter standing in for
// the DOM (anim/dom), and ECS integration (via a Donburi adapter in
// anim/ecs).
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package anim
