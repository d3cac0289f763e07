// Profiling:
// go build ./profile/store
// ./store
// go tool pprof -http=":8000" -nodefraction=0.001 ./store mem.pprof

package main

import (
	"github.com/TheBitDrifter/stash"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

func main() {
	rounds := 50
	iters := 100
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	pos := stash.FactoryNewComponent[position]()
	vel := stash.FactoryNewComponent[velocity]()
	filter := stash.Factory.NewFilter().With(pos, vel)

	for range rounds {
		store := stash.Factory.NewStore()
		cursor := stash.Factory.NewCursor(filter, store)
		ids := make([]stash.EntityID, 0, numEntities)

		for range iters {
			for range numEntities {
				e := store.CreateEntity()
				pos.Set(store, e, position{})
				vel.Set(store, e, velocity{X: 1, Y: 1})
				ids = append(ids, e)
			}
			for e := range cursor.Entities() {
				v, _ := vel.Get(store, e)
				pos.Update(store, e, func(p *position) {
					p.X += v.X
					p.Y += v.Y
				})
			}
			for _, e := range ids {
				store.DeleteEntity(e)
			}
			ids = ids[:0]
		}
	}
}
