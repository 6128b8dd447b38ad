package geometry

import (
	"github.com/qiujiangkun/raytracer/pkg/core"
	"github.com/qiujiangkun/raytracer/pkg/material"
)

// leafThreshold is the most shapes a leaf holds. Leaves keep scene order.
const leafThreshold = 8

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Shapes for leaf nodes, nil for internal nodes
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// It is read-only after construction and safe to share between render tasks.
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Partitioning must not reorder the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH recursively splits at the midpoint of the longest axis
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(shape.BoundingBox())
	}

	leaf := &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	if len(shapes) <= leafThreshold {
		return leaf
	}

	axis := boundingBox.LongestAxis()
	minVal := core.Axis(boundingBox.Min, axis)
	maxVal := core.Axis(boundingBox.Max, axis)
	if maxVal <= minVal {
		return leaf
	}
	splitPos := (minVal + maxVal) * 0.5

	var left, right []Shape
	for _, shape := range shapes {
		if core.Axis(shape.BoundingBox().Center(), axis) < splitPos {
			left = append(left, shape)
		} else {
			right = append(right, shape)
		}
	}

	// Every center on one side means no split helps
	if len(left) == 0 || len(right) == 0 {
		return leaf
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// Hit returns the closest intersection across all shapes in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	hit := bvh.hitNode(bvh.Root, ray, tMin, tMax)
	return hit, hit != nil
}

func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) *material.HitRecord {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil
	}

	if node.Shapes != nil {
		hit, _ := World(node.Shapes).Hit(ray, tMin, tMax)
		return hit
	}

	closest := bvh.hitNode(node.Left, ray, tMin, tMax)
	closestSoFar := tMax
	if closest != nil {
		closestSoFar = closest.T
	}
	if hit := bvh.hitNode(node.Right, ray, tMin, closestSoFar); hit != nil {
		return hit
	}
	return closest
}

// BoundingBox returns the overall bounds of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}
