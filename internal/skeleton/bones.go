// Package skeleton poses meshes with a hierarchy of rigid joints.
package skeleton

import (
	"fmt"

	"orientkit/internal/euler"
	"orientkit/internal/mathutil"
	"orientkit/internal/mesh"
)

// Joint is one node of the hierarchy. Rotation is local to the parent.
type Joint struct {
	Name     string
	Parent   int // -1 for a root; must precede the joint
	Position mathutil.Vec3
	Rotation mathutil.Quat
}

// NewJoint builds a joint whose local rotation is given as Euler angles in
// the given order.
func NewJoint(name string, parent int, pos mathutil.Vec3, a euler.Angles, o euler.Order) (Joint, error) {
	if !o.Valid() {
		return Joint{}, fmt.Errorf("skeleton: joint %q: %w", name, euler.ErrUnknownOrder)
	}
	return Joint{
		Name:     name,
		Parent:   parent,
		Position: pos,
		Rotation: euler.ToQuat(a, o).Normalize(),
	}, nil
}

// BuildWorldMatrices computes the world transform for each joint.
// Returns a slice of 4×4 matrices indexed by joint index.
func BuildWorldMatrices(joints []Joint) []mathutil.Mat4 {
	worlds := make([]mathutil.Mat4, len(joints))
	for i, j := range joints {
		local := mathutil.TRS(j.Position, j.Rotation, 1)

		// Chain with parent
		if j.Parent >= 0 && j.Parent < i {
			worlds[i] = mathutil.Mat4Mul(worlds[j.Parent], local)
		} else {
			worlds[i] = local
		}
	}
	return worlds
}

// Pose returns copies of meshes with skinned vertices moved by their joint's
// world matrix. Rigid skinning: 1 joint per vertex, weight = 1.0. The input
// meshes are not modified, so they can be shared between goroutines.
func Pose(meshes []mesh.Mesh, joints []Joint) []mesh.Mesh {
	posed := make([]mesh.Mesh, len(meshes))
	copy(posed, meshes)
	if len(joints) == 0 {
		return posed
	}

	worlds := BuildWorldMatrices(joints)

	// Check if all matrices are identity (skip if so)
	allIdentity := true
	for _, w := range worlds {
		if !w.IsIdentity() {
			allIdentity = false
			break
		}
	}
	if allIdentity {
		return posed
	}

	for mi := range posed {
		if len(posed[mi].Nodes) == 0 {
			continue
		}
		m := posed[mi].Clone()
		for vi := range m.Verts {
			if vi >= len(m.Nodes) {
				break
			}
			ji := int(m.Nodes[vi])
			if ji < 0 || ji >= len(worlds) {
				continue
			}
			v := mathutil.Vec3{float64(m.Verts[vi][0]), float64(m.Verts[vi][1]), float64(m.Verts[vi][2])}
			t := worlds[ji].MulPoint(v)
			m.Verts[vi] = [3]float32{float32(t[0]), float32(t[1]), float32(t[2])}
		}
		posed[mi] = m
	}
	return posed
}
