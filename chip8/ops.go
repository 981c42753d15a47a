/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package chip8

// Apply executes op against ex. It is the single entry point the
// simulator uses to run a decoded instruction; every opcode's
// semantics live here, written purely against the Execute capability.
func Apply(op Operation, ex Execute) error {
	switch op.Code {
	case NoOp:
		return nil
	case Cls:
		return applyCls(ex)
	case Ret:
		return applyRet(ex)
	case Jump:
		return ex.Jump(Address(op.Src.Value))
	case JumpV0:
		return applyJumpV0(op, ex)
	case Call:
		return applyCall(op, ex)
	case SkipEq:
		return applySkip(op, ex, true)
	case SkipNotEq:
		return applySkip(op, ex, false)
	case SkipKey:
		return applySkipKey(op, ex, true)
	case SkipNotKey:
		return applySkipKey(op, ex, false)
	case Load:
		return applyLoad(op, ex)
	case Add:
		return applyAdd(op, ex)
	case Sub, Subn:
		return applySub(op, ex)
	case Or:
		return applyBitwise(op, ex, func(a, b uint) uint { return a | b })
	case And:
		return applyBitwise(op, ex, func(a, b uint) uint { return a & b })
	case Xor:
		return applyBitwise(op, ex, func(a, b uint) uint { return a ^ b })
	case Shr:
		return applyShift(op, ex, true)
	case Shl:
		return applyShift(op, ex, false)
	case Rand:
		return applyRand(op, ex)
	case Sprite:
		return applySprite(op, ex)
	case Font:
		return applyFont(op, ex)
	case Bcd:
		return applyBcd(op, ex)
	case WaitKey:
		return applyWaitKey(op, ex)
	case Stash:
		return applyStash(op, ex)
	case Fetch:
		return applyFetch(op, ex)
	case ScrollDown, ScrollUp, ScrollLeft, ScrollRight, LowRes, HighRes,
		ExitInterpreter, LoadI16, SelectPlane, StoreAudioPattern:
		cfg := ex.Config()
		cfg.logf("unimplemented placeholder opcode executed: %s", op.Code)
		return nil
	default:
		return errInvalidOperand("unrecognized opcode")
	}
}

func applyCls(ex Execute) error {
	w, h := ex.Config().ScreenWidth, ex.Config().ScreenHeight

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if err := ex.SetPixel(x, y, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

func applyRet(ex Execute) error {
	addr, err := ex.StackPop()
	if err != nil {
		return err
	}

	return ex.Jump(addr)
}

func applyJumpV0(op Operation, ex Execute) error {
	v0, err := ex.Load(Src{Kind: SrcRegisterKind, Value: 0})
	if err != nil {
		return err
	}

	target := (int(op.Src.Value) + int(v0)) % ex.Config().RAMBytes

	return ex.Jump(Address(target))
}

func applyCall(op Operation, ex Execute) error {
	if err := ex.StackPush(ex.PC()); err != nil {
		return err
	}

	return ex.Jump(Address(op.Src.Value))
}

func applySkip(op Operation, ex Execute, wantEqual bool) error {
	a, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	b, err := ex.Load(op.Aux)
	if err != nil {
		return err
	}

	if (a == b) == wantEqual {
		ex.AdvancePC()
	}

	return nil
}

func applySkipKey(op Operation, ex Execute, wantDown bool) error {
	k, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	if k >= 16 {
		return errInvalidOperand("key index out of range")
	}

	down := ex.Keyboard()[k]

	if down == wantDown {
		ex.AdvancePC()
	}

	return nil
}

func applyLoad(op Operation, ex Execute) error {
	v, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	return ex.Store(op.Dest, v)
}

func applyAdd(op Operation, ex Execute) error {
	a, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	b, err := ex.Load(op.Aux)
	if err != nil {
		return err
	}

	r := a + b

	if op.Dest.Kind == DestIKind {
		return ex.Store(op.Dest, r&0xFFFF)
	}

	if err := ex.Store(op.Dest, r&0xFF); err != nil {
		return err
	}

	ex.SetFlag(r > 0xFF)

	return nil
}

func applySub(op Operation, ex Execute) error {
	a, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	b, err := ex.Load(op.Aux)
	if err != nil {
		return err
	}

	if err := ex.Store(op.Dest, (a-b)&0xFF); err != nil {
		return err
	}

	ex.SetFlag(a >= b)

	return nil
}

func applyBitwise(op Operation, ex Execute, f func(a, b uint) uint) error {
	a, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	b, err := ex.Load(op.Aux)
	if err != nil {
		return err
	}

	return ex.Store(op.Dest, f(a, b)&0xFF)
}

func applyShift(op Operation, ex Execute, right bool) error {
	src := op.Src

	if ex.Config().QuirkShift {
		src = Src{Kind: SrcRegisterKind, Value: op.Dest.Value}
	}

	v, err := ex.Load(src)
	if err != nil {
		return err
	}

	r, flag := (v<<1)&0xFF, v&0x80 != 0
	if right {
		r, flag = (v>>1)&0xFF, v&1 != 0
	}

	if err := ex.Store(op.Dest, r); err != nil {
		return err
	}

	ex.SetFlag(flag)

	return nil
}

func applyRand(op Operation, ex Execute) error {
	r, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	mask, err := ex.Load(op.Aux)
	if err != nil {
		return err
	}

	return ex.Store(op.Dest, r&mask)
}

func applySprite(op Operation, ex Execute) error {
	x, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	y, err := ex.Load(op.Aux)
	if err != nil {
		return err
	}

	n := int(op.Aux2.Value)
	collided := false

	for row := 0; row < n; row++ {
		b, err := ex.ReadByte(row)
		if err != nil {
			return err
		}

		for bit := 0; bit < 8; bit++ {
			p := Pixel((b >> (7 - bit)) & 1)
			if p == 0 {
				continue
			}

			c, err := ex.XorPixel(int(x)+bit, int(y)+row, p)
			if err != nil {
				return err
			}

			collided = collided || c
		}
	}

	ex.SetFlag(collided)

	return nil
}

func applyFont(op Operation, ex Execute) error {
	g, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	cfg := ex.Config()

	base, height := cfg.SmallFontBase, 5
	if op.Aux.Value != 0 {
		base, height = cfg.BigFontBase, 10
	}

	return ex.Store(Dest{Kind: DestIKind}, uint(base)+g*uint(height))
}

func applyBcd(op Operation, ex Execute) error {
	v, err := ex.Load(op.Src)
	if err != nil {
		return err
	}

	if err := ex.WriteByte(0, byte(v/100)); err != nil {
		return err
	}

	if err := ex.WriteByte(1, byte((v/10)%10)); err != nil {
		return err
	}

	return ex.WriteByte(2, byte(v%10))
}

func applyWaitKey(op Operation, ex Execute) error {
	key, err := ex.WaitKey()
	if err != nil {
		return err
	}

	return ex.Store(op.Dest, uint(key))
}

func applyStash(op Operation, ex Execute) error {
	first, last, flag := op.Dest.Value, op.Src.Value, op.Aux.Value

	for r := first; r <= last; r++ {
		v, err := ex.Load(Src{Kind: SrcRegisterKind, Value: r})
		if err != nil {
			return err
		}

		if err := ex.WriteByte(int(r-first), byte(v)); err != nil {
			return err
		}
	}

	if flag == 1 {
		return advanceI(ex, last-first+1)
	}

	return nil
}

func applyFetch(op Operation, ex Execute) error {
	first, last, flag := op.Dest.Value, op.Src.Value, op.Aux.Value

	for r := first; r <= last; r++ {
		b, err := ex.ReadByte(int(r - first))
		if err != nil {
			return err
		}

		if err := ex.Store(Dest{Kind: DestRegisterKind, Value: r}, uint(b)); err != nil {
			return err
		}
	}

	if flag == 1 {
		return advanceI(ex, last-first+1)
	}

	return nil
}

func advanceI(ex Execute, count uint) error {
	i, err := ex.Load(Src{Kind: SrcIKind})
	if err != nil {
		return err
	}

	return ex.Store(Dest{Kind: DestIKind}, i+count)
}
