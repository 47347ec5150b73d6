package reader

import (
	"github.com/arloliu/seiscube/geometry"
)

// ReadSubvolume returns the half-open box [minIL,maxIL) x [minXL,maxXL) x [minZ,maxZ).
//
// Each bound must satisfy 0 <= min < max <= n along its axis. Every block intersecting
// the box is decoded once.
func (r *Reader) ReadSubvolume(minIL, maxIL, minXL, maxXL, minZ, maxZ int) (*Volume, error) {
	req := SubvolumeRequest{MinIL: minIL, MaxIL: maxIL, MinXL: minXL, MaxXL: maxXL, MinZ: minZ, MaxZ: maxZ}

	return track(r, opSubvolume, func() (*Volume, error) {
		if err := req.Validate(r.geo); err != nil {
			return nil, err
		}

		lo := geometry.Shape{minIL, minXL, minZ}
		hi := geometry.Shape{maxIL, maxXL, maxZ}
		data, err := r.readBox(lo, hi)
		if err != nil {
			return nil, err
		}

		return &Volume{NI: maxIL - minIL, NX: maxXL - minXL, NZ: maxZ - minZ, Data: data}, nil
	})
}

// ReadVolume decodes the whole cube.
func (r *Reader) ReadVolume() (*Volume, error) {
	return track(r, opVolume, func() (*Volume, error) {
		data, err := r.readBox(geometry.Shape{}, r.geo.Dims)
		if err != nil {
			return nil, err
		}

		return &Volume{NI: r.geo.Dims[0], NX: r.geo.Dims[1], NZ: r.geo.Dims[2], Data: data}, nil
	})
}

// readBox gathers the validated half-open box [lo, hi) into an inline-major array.
//
// Inlines, crosslines and depth slices are boxes one sample thick, and their 2-D
// row-major layout coincides with the box layout.
func (r *Reader) readBox(lo, hi geometry.Shape) ([]float32, error) {
	g := r.geo

	var ext geometry.Shape
	var first, last geometry.Shape
	for axis := range ext {
		ext[axis] = hi[axis] - lo[axis]
		first[axis], last[axis] = g.BlockRange(axis, lo[axis], hi[axis])
	}

	out := make([]float32, ext.Volume())
	jobs := make([]blockJob, 0, (last[0]-first[0]+1)*(last[1]-first[1]+1)*(last[2]-first[2]+1))

	for bi := first[0]; bi <= last[0]; bi++ {
		for bj := first[1]; bj <= last[1]; bj++ {
			for bk := first[2]; bk <= last[2]; bk++ {
				c := geometry.BlockCoord{I: bi, J: bj, K: bk}
				blo, bhi := g.BlockExtent(c)

				// intersection of the block's real extent with the box
				var ilo, ihi geometry.Shape
				for axis := range ilo {
					ilo[axis] = max(blo[axis], lo[axis])
					ihi[axis] = min(bhi[axis], hi[axis])
				}
				run := ihi[2] - ilo[2]

				jobs = append(jobs, blockJob{
					coord: c,
					scatter: func(block []float32) {
						for il := ilo[0]; il < ihi[0]; il++ {
							for xl := ilo[1]; xl < ihi[1]; xl++ {
								src := g.Offset(il-blo[0], xl-blo[1], ilo[2]-blo[2])
								dst := ((il-lo[0])*ext[1]+(xl-lo[1]))*ext[2] + (ilo[2] - lo[2])
								copy(out[dst:dst+run], block[src:src+run])
							}
						}
					},
				})
			}
		}
	}

	if err := r.gather(jobs); err != nil {
		return nil, err
	}

	return out, nil
}
