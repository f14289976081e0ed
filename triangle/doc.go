/*
Package triangle draws the smallest useful picture a GLES3 or WebGL2
context can make: one solid triangle from a fixed pair of shaders and a
static three-vertex buffer.

Render makes a single pass with no frame loop and no retries. It returns
the first failure it meets.

	glctx, err := mobgl.Acquire(e.DrawContext)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := triangle.Render(glctx, surface); err != nil {
		log.Fatalf("%v", err)
	}

Context mirrors golang.org/x/mobile/gl.Context. The mobgl package adapts
an x/mobile context and the webgl package adapts a browser <canvas>.
*/
package triangle
