// Package shared holds the building blocks every value object in the domain is
// made from: the Result outcome carrier, the Guard precondition checks and the
// ValueObject base with structural equality.
//
// Factories run guards in sequence and stop at the first failure:
//
//	if g := shared.AgainstAtLeast(2, name, "userName"); !g.Succeeded {
//		return shared.Fail[*UserName](g.Err(domainerrors.ErrUserNameTooShort))
//	}
//	return shared.Ok(&UserName{...})
package shared
