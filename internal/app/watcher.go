package app

import (
	fsw "github.com/corey/wce/internal/adapters/fsnotify"
	"github.com/corey/wce/internal/adapters/geojson"
	"github.com/corey/wce/internal/domain/geography"
)

// watchGeometry loads the geometry file and reloads it whenever it changes.
// Neither step is fatal; the map is simply empty without geometry.
func (a *App) watchGeometry(path string) {
	a.reloadGeometry(path)

	watcher, err := fsw.NewWatcher()
	if err != nil {
		a.Logger.Warnf("geometry watcher unavailable: %v", err)
		return
	}
	if err := watcher.Watch(path, a.reloadGeometry); err != nil {
		a.Logger.Warnf("geometry watcher unavailable: %v", err)
		watcher.Stop()
		return
	}
	a.Watcher = watcher
}

// reloadGeometry parses path and swaps it in. On failure the previous set
// stays loaded.
func (a *App) reloadGeometry(path string) {
	set, err := geojson.Load(path)
	if err != nil {
		a.Logger.Warnf("geometry %s: %v", path, err)
		return
	}
	a.geometry.Store(set)
	a.Metrics.SetGeometries(set.Len())
	a.Logger.Infof("loaded %d geometries from %s (%s)", set.Len(), path, set.Format)
}

// Geometries returns the loaded map features, or nil.
func (a *App) Geometries() []geography.Geometry {
	if set := a.geometry.Load(); set != nil {
		return set.Geometries
	}
	return nil
}

// GeometryRaw returns the loaded geometry file, or nil.
func (a *App) GeometryRaw() []byte {
	if set := a.geometry.Load(); set != nil {
		return set.Raw
	}
	return nil
}
