package geo

import "sync"

// Matrix builds the symmetric n×n distance matrix for points in unit u.
func Matrix(points []Point, u Unit) [][]float64 {
	n := len(points)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Haversine(points[i], points[j], u)
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m
}

// MatrixConcurrent computes the same matrix as Matrix using a small
// worker pool over the upper triangle. Output is identical to Matrix;
// only the fill order differs.
func MatrixConcurrent(points []Point, u Unit, workers int) [][]float64 {
	n := len(points)
	if workers <= 1 || n < 64 {
		return Matrix(points, u)
	}

	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	type cell struct{ i, j int }
	tasks := make(chan cell, workers*2)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				d := Haversine(points[t.i], points[t.j], u)
				// Distinct cells per task; no two workers touch the same pair.
				m[t.i][t.j] = d
				m[t.j][t.i] = d
			}
		}()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			tasks <- cell{i, j}
		}
	}
	close(tasks)
	wg.Wait()
	return m
}
