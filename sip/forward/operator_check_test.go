package forward

var (
	_ Operator = (*ColeColePhi)(nil)
	_ Operator = (*DoubleColeColePhi)(nil)
	_ Operator = (*ColeColeAbs)(nil)
	_ Operator = (*ColeColeComplex)(nil)
	_ Operator = (*ColeColeComplexSigma)(nil)
	_ Operator = (*PeltonPhiEM)(nil)
	_ Operator = (*DebyePhi)(nil)
	_ Operator = (*DebyeComplex)(nil)
	_ Operator = (*Joint)(nil)

	_ Modelling = (*Base)(nil)
)
