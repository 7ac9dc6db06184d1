package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRotationHasOrderFour(t *testing.T) {
	for _, shape := range tetris.AllShapes() {
		for r := -4; r <= 8; r++ {
			t.Run(fmt.Sprintf("%s/r=%d", shape, r), func(t *testing.T) {
				assert.Equal(t, shape.Matrix(r), shape.Matrix(r+4))
			})
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, shape := range tetris.AllShapes() {
		m := shape.Matrix(0)
		rotated := tetris.Rotate(tetris.Rotate(tetris.Rotate(tetris.Rotate(m))))
		assert.Equal(t, m, rotated, "shape %s", shape)
	}
}

func TestRotateClockwise(t *testing.T) {
	rotated := tetris.ShapeI.Matrix(1)
	for i := range 4 {
		for j := range 4 {
			assert.Equal(t, j == 2, rotated[i][j], "cell %d,%d", i, j)
		}
	}

	// T points down at rest, left after one clockwise turn
	tee := tetris.ShapeT.Matrix(1)
	assert.True(t, tee[1][2])
	assert.True(t, tee[2][2])
	assert.True(t, tee[3][2])
	assert.True(t, tee[2][1])
	assert.Len(t, tetris.Piece{Shape: tetris.ShapeT, Rotation: 1}.Cells(), 4)
}

func TestEveryShapeHasFourCells(t *testing.T) {
	for _, shape := range tetris.AllShapes() {
		for r := range 4 {
			cells := tetris.Piece{Shape: shape, Rotation: r}.Cells()
			assert.Len(t, cells, 4, "shape %s rotation %d", shape, r)
		}
	}
}

func TestPieceRotationIsNormalized(t *testing.T) {
	p := tetris.SpawnPiece(tetris.ShapeT)

	assert.Equal(t, 3, p.Rotated(-1).Rotation)
	assert.Equal(t, 1, p.Rotated(5).Rotation)
	assert.Equal(t, p.Rotated(-1).Matrix(), p.Rotated(3).Matrix())
}

func TestShapeString(t *testing.T) {
	names := ""
	for _, shape := range tetris.AllShapes() {
		assert.True(t, shape.Valid())
		names += shape.String()
	}
	assert.Equal(t, "IOTSZJL", names)
	assert.False(t, tetris.Shape(tetris.ShapeCount).Valid())
}
