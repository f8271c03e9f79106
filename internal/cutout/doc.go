// Package cutout derives an alpha channel from a mask image and cuts the
// foreground out of the matching photograph.
//
// The pipeline is strictly linear:
//
//  1. Align: the mask is brought to the original's exact dimensions.
//  2. Classify: every pixel is kept (255) or discarded (0) by a Strategy.
//  3. Clean: the strategy's optional post-filter runs on the alpha grid.
//  4. Composite: the grid becomes the alpha channel of the original.
//  5. Crop: the result is cropped to the bounding box of visible pixels.
//
// # Strategies
//
// Two interchangeable strategies exist:
//   - Threshold: a pixel is kept when the mask is sufficiently red there.
//     The original image plays no part in the decision.
//   - DiffBlue: a pixel is kept when the mask differs from the original and
//     the mask is blue-dominant there. A morphological opening (erosion then
//     dilation with a square kernel) removes thin annotation strokes.
//
// # Coordinate System
//
// Images are handled as *image.NRGBA with their origin at (0,0). Rectangles
// follow image.Rectangle: Min is inclusive, Max is exclusive.
//
// # Filter Boundaries
//
// The min/max filters clamp neighbourhoods to the grid. For extremal filters
// this is the same as ignoring cells outside the image, so a region touching
// the border is not eroded from the border side.
//
// # Errors
//
// Failures carry one of ErrDecode, ErrDimension or ErrConfig and can be told
// apart with errors.Is. Nothing in this package retries or substitutes
// defaults after a failure.
//
// # Thread Safety
//
// The package has no global mutable state. Each call owns its buffers, so
// concurrent calls on different inputs are safe.
package cutout
