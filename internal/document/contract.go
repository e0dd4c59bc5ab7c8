package document

import (
	"strings"
	"text/template"

	"github.com/Matheus-Mantovani/Rentify/internal/domain"
	"github.com/google/uuid"
)

// Document is a rendered printable artifact.
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type contractParty struct {
	Nome          string
	Nacionalidade string
	EstadoCivil   string
	Profissao     string
	RG            string
	CPF           string
	Endereco      string
}

type contractData struct {
	Locador    contractParty
	Locatario  contractParty
	Fiador     contractParty
	Inicio     string
	Termino    string
	Endereco   string
	Aluguel    string
	DiaVenc    int
	ChavePix   string
	Pintura    string
	TemPintura bool
	Cidade     string
}

var contractTmpl = template.Must(template.New("contract").Parse(`CONTRATO DE LOCAÇÃO RESIDENCIAL

DADOS GERAIS:
Prazo de locação: 30 (trinta) meses
Início: {{.Inicio}}   Término: {{.Termino}}
Objeto: IMÓVEL RESIDENCIAL

LOCADOR(A): {{.Locador.Nome}}, {{.Locador.Nacionalidade}}, {{.Locador.EstadoCivil}}, {{.Locador.Profissao}}, portador do RG nº {{.Locador.RG}} e CPF nº {{.Locador.CPF}}, residente e domiciliado em {{.Locador.Endereco}}.

LOCATÁRIO(A): {{.Locatario.Nome}}, {{.Locatario.Nacionalidade}}, {{.Locatario.EstadoCivil}}, {{.Locatario.Profissao}}, portador do RG nº {{.Locatario.RG}} e CPF nº {{.Locatario.CPF}}.

FIADOR(A): {{.Fiador.Nome}}, {{.Fiador.Nacionalidade}}, {{.Fiador.EstadoCivil}}, {{.Fiador.Profissao}}, portador do RG nº {{.Fiador.RG}} e CPF nº {{.Fiador.CPF}}, residente em {{.Fiador.Endereco}}.

CLÁUSULA 1ª. DO OBJETO
O objeto deste contrato de locação é o imóvel residencial situado no endereço: {{.Endereco}}.

CLÁUSULA 2ª. DO VALOR E FORMA DE PAGAMENTO
O valor do aluguel será de {{.Aluguel}}, a ser pago mensalmente, com vencimento no dia {{.DiaVenc}} de cada mês.
O pagamento deverá ser efetuado através de PIX para a chave {{.ChavePix}}, ou mediante depósito na conta bancária de titularidade do LOCADOR.

CLÁUSULA 3ª. DO REAJUSTE
3ª (a). O valor locativo será reajustado anualmente, mediante aplicação do maior índice dentre IPCA, IGP-M ou INCC; na ausência destes, será adotado o índice oficial de inflação definido pelo Governo Federal (Art. 18, Lei nº 8.245/91).

CLÁUSULA 4ª. DO INADIMPLEMENTO E COBRANÇA
4.(a). Em caso de atraso no pagamento, incidirá multa de 10% (dez por cento) sobre o valor devido, além de juros de mora de 1% (um por cento) ao mês e correção monetária até o efetivo pagamento.

CLÁUSULA 5ª. DA DURAÇÃO E RESCISÃO
5.(a). A presente locação é ajustada pelo prazo de 30 (trinta) meses, contados a partir da data de início.
5.(c). Após o decurso mínimo de 12 (doze) meses de vigência contratual, o LOCADOR poderá solicitar a desocupação mediante notificação com 30 dias de antecedência.
5.(e). Em caso de rescisão pelo LOCATÁRIO antes do prazo final, este pagará multa compensatória proporcional de 3 (três) aluguéis vigentes.

CLÁUSULA 9ª. DO DEPÓSITO DE MANUTENÇÃO (PINTURA)
{{if .TemPintura}}O(a) LOCATÁRIO(a) pagará ao LOCADOR o valor de {{.Pintura}} a título de taxa de pintura/manutenção.{{else}}[NÃO APLICÁVEL - APAGAR SE NECESSÁRIO]{{end}}

CLÁUSULA 10ª. DAS OBRIGAÇÕES DE CONSERVAÇÃO
O(a) LOCATÁRIO(a) declara ter recebido o imóvel em perfeito estado de conservação, uso e funcionamento, comprometendo-se a mantê-lo nas mesmas condições.

CLÁUSULA 14ª. DA DESTINAÇÃO DO IMÓVEL
A locação destina-se exclusivamente à finalidade residencial, sendo vedado o uso comercial ou sublocação.

CLÁUSULA 21ª. DO FORO DE ELEIÇÃO
Fica eleito o foro da comarca de {{.Cidade}} para dirimir quaisquer controvérsias decorrentes deste contrato.

CLÁUSULA 22ª. DA ACEITAÇÃO E ASSINATURA
E, por estarem assim justos e acordados, assinam o presente instrumento em 3 (três) vias de igual teor e forma, juntamente com 2 (duas) testemunhas.

{{.Cidade}}, ____ de _______________ de 20____.

_________________________________________
{{.Locador.Nome}}
Locador(a) | CPF: {{.Locador.CPF}}

_________________________________________
{{.Locatario.Nome}}
Locatário(a) | CPF: {{.Locatario.CPF}}

_________________________________________
{{.Fiador.Nome}}
Fiador(a) | CPF: {{.Fiador.CPF}}

_________________________           _________________________
Testemunha 1:                       Testemunha 2:
CPF:                                CPF:
`))

// RenderContract maps a lease with its nested tenant/property into the
// lease contract. Missing fields render as bracketed placeholders so the
// document is always printable, even from partial data. An optional
// guarantor fills the fiador block.
func RenderContract(lease *domain.Lease, landlord *domain.LandlordProfile, guarantor *domain.Guarantor) (*Document, error) {
	data := contractData{
		Locador:    landlordParty(landlord, lease),
		Locatario:  tenantParty(lease.Tenant),
		Fiador:     guarantorParty(guarantor),
		Inicio:     Date(lease.StartDate),
		Termino:    Date(lease.EndDate),
		Endereco:   propertyAddress(lease.Property),
		Aluguel:    Money(lease.BaseRentValue),
		DiaVenc:    lease.PaymentDueDay,
		ChavePix:   "[INSERIR CHAVE PIX]",
		Pintura:    Money(lease.PaintingFeeValue),
		TemPintura: lease.PaintingFeeValue > 0,
		Cidade:     "[CIDADE]",
	}
	if landlord != nil && landlord.PixKey != "" {
		data.ChavePix = landlord.PixKey
	}
	if lease.Property != nil && lease.Property.CityName != "" {
		data.Cidade = lease.Property.CityName
	}

	var buf strings.Builder
	if err := contractTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return &Document{
		ID:    uuid.New().String(),
		Title: "Contrato de Locação Residencial",
		Body:  buf.String(),
	}, nil
}

func landlordParty(l *domain.LandlordProfile, lease *domain.Lease) contractParty {
	p := contractParty{
		Nome:          FallbackOr(lease.LandlordName, "[NOME DO LOCADOR]"),
		Nacionalidade: "[NACIONALIDADE]",
		EstadoCivil:   "[ESTADO CIVIL]",
		Profissao:     "[PROFISSÃO]",
		RG:            "[RG DO LOCADOR]",
		CPF:           "[CPF DO LOCADOR]",
		Endereco:      "[ENDEREÇO COMPLETO DO LOCADOR]",
	}
	if l == nil {
		return p
	}
	p.Nome = strings.ToUpper(FallbackOr(l.FullName, p.Nome))
	p.Nacionalidade = FallbackOr(l.Nationality, p.Nacionalidade)
	if l.MaritalStatus != "" {
		p.EstadoCivil = strings.ToLower(l.MaritalStatus.Label())
	}
	p.Profissao = FallbackOr(l.Profession, p.Profissao)
	p.RG = FallbackOr(l.RG, p.RG)
	p.CPF = FallbackOr(l.CPFCNPJ, p.CPF)
	p.Endereco = FallbackOr(l.Address, p.Endereco)
	return p
}

func tenantParty(t *domain.Tenant) contractParty {
	p := contractParty{
		Nome:          "[NOME DO LOCATÁRIO]",
		Nacionalidade: "[NACIONALIDADE]",
		EstadoCivil:   "[ESTADO CIVIL]",
		Profissao:     "[PROFISSÃO]",
		RG:            "[RG]",
		CPF:           "[CPF]",
		Endereco:      "[ENDEREÇO ANTERIOR]",
	}
	if t == nil {
		return p
	}
	if t.FullName != "" {
		p.Nome = strings.ToUpper(t.FullName)
	}
	p.Nacionalidade = FallbackOr(t.Nationality, p.Nacionalidade)
	if t.MaritalStatus != "" {
		p.EstadoCivil = strings.ToLower(t.MaritalStatus.Label())
	}
	p.Profissao = FallbackOr(t.Profession, p.Profissao)
	p.RG = FallbackOr(t.RG, p.RG)
	p.CPF = FallbackOr(t.CPF, p.CPF)
	if t.CityName != "" || t.StateCode != "" {
		p.Endereco = t.CityName + "-" + t.StateCode
	}
	return p
}

func guarantorParty(g *domain.Guarantor) contractParty {
	p := contractParty{
		Nome:          "[NOME DO FIADOR - OPCIONAL]",
		Nacionalidade: "[NACIONALIDADE]",
		EstadoCivil:   "[ESTADO CIVIL]",
		Profissao:     "[PROFISSÃO]",
		RG:            "[RG]",
		CPF:           "[CPF]",
		Endereco:      "[ENDEREÇO COMPLETO]",
	}
	if g == nil {
		return p
	}
	if g.FullName != "" {
		p.Nome = strings.ToUpper(g.FullName)
	}
	p.RG = FallbackOr(g.RG, p.RG)
	p.CPF = FallbackOr(g.CPF, p.CPF)
	if g.CityName != "" || g.StateCode != "" {
		p.Endereco = g.CityName + "-" + g.StateCode
	}
	return p
}

func propertyAddress(p *domain.Property) string {
	if p == nil {
		return pendingField
	}
	parts := []string{}
	for _, s := range []string{p.Address, p.AddressComplement, p.Neighborhood} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if p.CityName != "" || p.StateCode != "" {
		parts = append(parts, p.CityName+"-"+p.StateCode)
	}
	if len(parts) == 0 {
		return pendingField
	}
	return strings.Join(parts, ", ")
}
