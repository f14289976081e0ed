/*
Package webgl adapts a browser <canvas> element and its WebGL2 rendering
context to the triangle package, so the same Render call drives both
x/mobile and the browser.

GL objects created through Context are kept in a handle table and handed
out as triangle handle values. WebGL2 shares its enum values with OpenGL
ES 3, so triangle.Enum values are passed through unchanged.
*/
package webgl
