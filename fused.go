// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// EmitThen emits a value and then continues with next.
// Fuses [Emit] + [PlanThen] without the intermediate closure.
func EmitThen[K, O, B any](o O, next Plan[K, O, B]) Plan[K, O, B] {
	return func(done func(B) Machine[K, O], yield YieldCont[K, O], await AwaitCont[K, O], stop Machine[K, O]) Machine[K, O] {
		return yield(o, next(done, yield, await, stop))
	}
}

// AwaitBind requests one value on the single channel and passes it to f.
// Fuses [Awaits] on [Is] + [PlanBind]; the reflexive selector fixes the
// requested type to I.
func AwaitBind[I, O, B any](f func(I) Plan[Is[I], O, B]) Plan[Is[I], O, B] {
	return func(done func(B) Machine[Is[I], O], yield YieldCont[Is[I], O], await AwaitCont[Is[I], O], stop Machine[Is[I], O]) Machine[Is[I], O] {
		return await(func(v kont.Resumed) Machine[Is[I], O] {
			return f(v.(I))(done, yield, await, stop)
		}, Is[I]{}, stop)
	}
}
