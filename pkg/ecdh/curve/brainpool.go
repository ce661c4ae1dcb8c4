package curve

// domainConstants holds the explicit parameters of a curve the host
// catalog does not provide: the prime p of the base field, the
// coefficients of E: y^2 = x^3 + ax + b (mod p), the base point (x, y),
// and its prime order q. All values are big-endian hex. The cofactor is
// 1 for every curve in scope and is not repeated per entry.
type domainConstants struct {
	name             string
	p, a, b, x, y, q string
}

// ECC Brainpool curves (RFC 5639) plus secp192r1, which current Go
// releases dropped from the crypto/elliptic catalog.
var (
	brainpoolP224r1 = &domainConstants{
		name: "brainpoolP224r1",
		p:    "D7C134AA264366862A18302575D1D787B09F075797DA89F57EC8C0FF",
		a:    "68A5E62CA9CE6C1C299803A6C1530B514E182AD8B0042A59CAD29F43",
		b:    "2580F63CCFE44138870713B1A92369E33E2135D266DBB372386C400B",
		x:    "0D9029AD2C7E5CF4340823B2A87DC68C9E4CE3174C1E6EFDEE12C07D",
		y:    "58AA56F772C0726F24C6B89E4ECDAC24354B9E99CAA3F6D3761402CD",
		q:    "D7C134AA264366862A18302575D0FB98D116BC4B6DDEBCA3A5A7939F",
	}

	brainpoolP256r1 = &domainConstants{
		name: "brainpoolP256r1",
		p:    "A9FB57DBA1EEA9BC3E660A909D838D726E3BF623D52620282013481D1F6E5377",
		a:    "7D5A0975FC2C3057EEF67530417AFFE7FB8055C126DC5C6CE94A4B44F330B5D9",
		b:    "26DC5C6CE94A4B44F330B5D9BBD77CBF958416295CF7E1CE6BCCDC18FF8C07B6",
		x:    "8BD2AEB9CB7E57CB2C4B482FFC81B7AFB9DE27E1E3BD23C23A4453BD9ACE3262",
		y:    "547EF835C3DAC4FD97F8461A14611DC9C27745132DED8E545C1D54C72F046997",
		q:    "A9FB57DBA1EEA9BC3E660A909D838D718C397AA3B561A6F7901E0E82974856A7",
	}

	brainpoolP384r1 = &domainConstants{
		name: "brainpoolP384r1",
		p:    "8CB91E82A3386D280F5D6F7E50E641DF152F7109ED5456B412B1DA197FB71123ACD3A729901D1A71874700133107EC53",
		a:    "7BC382C63D8C150C3C72080ACE05AFA0C2BEA28E4FB22787139165EFBA91F90F8AA5814A503AD4EB04A8C7DD22CE2826",
		b:    "04A8C7DD22CE28268B39B55416F0447C2FB77DE107DCD2A62E880EA53EEB62D57CB4390295DBC9943AB78696FA504C11",
		x:    "1D1C64F068CF45FFA2A63A81B7C13F6B8847A3E77EF14FE3DB7FCAFE0CBD10E8E826E03436D646AAEF87B2E247D4AF1E",
		y:    "8ABE1D7520F9C2A45CB1EB8E95CFD55262B70B29FEEC5864E19C054FF99129280E4646217791811142820341263C5315",
		q:    "8CB91E82A3386D280F5D6F7E50E641DF152F7109ED5456B31F166E6CAC0425A7CF3AB6AF6B7FC3103B883202E9046565",
	}

	brainpoolP512r1 = &domainConstants{
		name: "brainpoolP512r1",
		p:    "AADD9DB8DBE9C48B3FD4E6AE33C9FC07CB308DB3B3C9D20ED6639CCA703308717D4D9B009BC66842AECDA12AE6A380E62881FF2F2D82C68528AA6056583A48F3",
		a:    "7830A3318B603B89E2327145AC234CC594CBDD8D3DF91610A83441CAEA9863BC2DED5D5AA8253AA10A2EF1C98B9AC8B57F1117A72BF2C7B9E7C1AC4D77FC94CA",
		b:    "3DF91610A83441CAEA9863BC2DED5D5AA8253AA10A2EF1C98B9AC8B57F1117A72BF2C7B9E7C1AC4D77FC94CADC083E67984050B75EBAE5DD2809BD638016F723",
		x:    "81AEE4BDD82ED9645A21322E9C4C6A9385ED9F70B5D916C1B43B62EEF4D0098EFF3B1F78E2D0D48D50D1687B93B97D5F7C6D5047406A5E688B352209BCB9F822",
		y:    "7DDE385D566332ECC0EABFA9CF7822FDF209F70024A57B1AA000C55B881F8111B2DCDE494A5F485E5BCA4BD88A2763AED1CA2B2FA8F0540678CD1E0F3AD80892",
		q:    "AADD9DB8DBE9C48B3FD4E6AE33C9FC07CB308DB3B3C9D20ED6639CCA70330870553E5C414CA92619418661197FAC10471DB1D381085DDADDB58796829CA90069",
	}

	secp192r1 = &domainConstants{
		name: "secp192r1",
		p:    "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF",
		a:    "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFC",
		b:    "64210519E59C80E70FA7E9AB72243049FEB8DEECC146B9B1",
		x:    "188DA80EB03090F67CBF20EB43A18800F4FF0AFD82FF1012",
		y:    "07192B95FFC8DA78631011ED6B24CDD573F977A11E794811",
		q:    "FFFFFFFFFFFFFFFFFFFFFFFF99DEF836146BC9B1B4D22831",
	}
)
