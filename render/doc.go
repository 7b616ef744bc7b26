// Package render turns a kinematics.MotionProfile into pictures and tables.
//
// What:
//
//   - Frames: four coloured segments per sample (ground, driver, coupler,
//     output) placed in the mechanism plane.
//   - Viewport: square axis limits that keep every frame of one linkage in
//     view without rescaling between frames.
//   - PNG: a single frame, or the θ3/θ4-versus-θ2 angle chart, drawn with
//     gonum.org/v1/plot onto a vgimg canvas.
//   - GIF: the whole revolution as an animation, one frame per sample.
//   - CSV: the profile as theta2,theta3,theta4,branch rows.
//
// Errors:
//
//   - ErrEmptyProfile  the profile has no samples.
//   - ErrBadFrameIndex a frame index is outside the profile.
//
// Rendering never alters the profile; all functions are safe for
// concurrent use on the same profile.
package render
