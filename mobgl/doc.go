/*
Package mobgl adapts a gl.Context from golang.org/x/mobile/gl to
triangle.Context. An app gets its context from the lifecycle event that
makes it visible:

	case lifecycle.CrossOn:
		glctx, err := mobgl.Acquire(e.DrawContext)
		if err != nil {
			log.Fatalf("%v", err)
		}
*/
package mobgl
